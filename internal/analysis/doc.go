// Package analysis tracks the analysis types the monitoring sensors can run
// and whether each of them is currently enabled.
//
// Definitions come from a whitespace-separated table:
//
//	# type      mechanism          description
//	dns         script:dns         DNS request and reply logging
//	http-body   filter:http-body   HTTP payload inspection
//
// Enable flags live in the persisted state as "analysis-<type>" so they
// survive restarts.
package analysis
