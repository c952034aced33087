// Package spool manages the configured UUCP sites of one installation.
//
// The Service holds one uucp.Site per configured name. Each site exclusively
// owns its queue; the service serialises scans and marks per site and scans
// different sites concurrently.
//
// # HTTP
//
//	GET  /sites                        summaries of every site
//	GET  /sites/:name                  summary of one site
//	GET  /sites/:name/queue            entities of one site
//	POST /sites/:name/scan             scan one site
//	POST /sites/:name/queue/:qid/mark  mark one mail or news batch
package spool
