// Command trajectory-report renders the diagnostic charts of a simulated
// robot run from data/saida.csv.
//
// Usage:
//
//	trajectory-report [--config config/report.yaml] [--verbose]
package main

func main() {
	Execute()
}
