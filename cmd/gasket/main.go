// Command gasket generates, renders and displays Apollonian gaskets.
//
// Usage:
//
//	gasket view                       # interactive window, Space subdivides
//	gasket render --steps 8 --out gasket.png
//	gasket stats --steps 16
//	gasket version
package main

func main() {
	Execute()
}
