// Command scaleinfo inspects linear range scalers and renders signal patches.
//
// Usage:
//
//	scaleinfo table [flags]
//	scaleinfo patch [flags] FILE
//
// Examples:
//
//	scaleinfo table --min 50 --max 100
//	scaleinfo table --min 100 --max 0 --steps 5
//	scaleinfo table --min -1 --max 1 --steps 16 --input sine
//	scaleinfo table --steps 8 --input noise --seed 42
//	scaleinfo patch --value 0.25 --samples 4 chain.yaml
package main

func main() {
	Execute()
}
