package gm

// Rad is an angle in radians. Positive angles rotate counter clockwise.
type Rad float64
