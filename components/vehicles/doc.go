// Package vehicles provides the make and model reference table used by the
// booking form, search helpers over it, and a small net/http handler that
// returns JSON options for the vehicle make and model inputs.
//
// The default handler responds to GET and HEAD requests. Without a make
// parameter it searches makes; with one it searches that make's models. The
// backing data is the embedded Make|Model list under data/vehicles.txt.
package vehicles
