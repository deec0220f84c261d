package basita

import (
	"fmt"
	"reflect"
)

// System is a unit of behaviour driven by a Scheduler. Init is called once
// before the first frame, Update once per frame. Both receive the shared engine state.
type System[S any] interface {
	Init(state S)
	Update(state S)
}

// SystemFuncs adapts plain functions to the System interface.
// Callbacks that are nil are skipped.
type SystemFuncs[S any] struct {
	Name     string
	OnInit   func(state S)
	OnUpdate func(state S)
}

func (f SystemFuncs[S]) Init(state S) {
	if f.OnInit != nil {
		f.OnInit(state)
	}
}

func (f SystemFuncs[S]) Update(state S) {
	if f.OnUpdate != nil {
		f.OnUpdate(state)
	}
}

func (f SystemFuncs[S]) String() string {
	if f.Name == "" {
		return "SystemFuncs"
	}

	return f.Name
}

// UpdateFunc creates a system without an init phase.
func UpdateFunc[S any](name string, update func(state S)) System[S] {
	return SystemFuncs[S]{Name: name, OnUpdate: update}
}

func systemNameOf(system any) string {
	if stringer, ok := system.(fmt.Stringer); ok {
		return stringer.String()
	}

	return reflect.TypeOf(system).String()
}
