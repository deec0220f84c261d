// Package basita is the component storage core of a small 2d engine.
//
// Components are kept in one of two storages. A Collection addresses
// values by a typed Handle it mints itself and keeps them in insertion order.
// An EntityCollection addresses values by an externally owned EntityId
// used as a direct slot index. Both implement the Storage interface.
//
// A Scheduler drives a fixed list of systems against a shared engine
// state: every Init once, then every Update once per frame, until the state stops running.
package basita
