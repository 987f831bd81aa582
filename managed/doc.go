// Package managed
// Author: momentics <momentics@gmail.com>
//
// Reference-counted value types built on the arc.Object header contract:
// embed the header, set count 1 and install a finalizer in the constructor,
// and release every owned resource (nested managed objects included) in that
// finalizer. These types double as templates for user-defined managed types.
package managed
