// Package cloudlift provides types, interfaces, and error helpers for working
// with the Cloudlift application-hosting API.
//
// # Overview
//
// The cloudlift package defines the domain types (App, AppStats, AppLogs) and
// the interfaces for the resource-oriented client (Client, AppsClient). A
// concrete implementation is provided by the liftclient package, which wires
// configuration and transport. Most consumers should import liftclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
//	  "github.com/cloudlift-io/cloudlift-client/pkg/liftclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := liftclient.New(&cloudlift.Config{Token: os.Getenv("CLOUDLIFT_TOKEN")})
//	  if err != nil { log.Fatal(err) }
//
//	  apps, err := cli.Apps().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = apps
//	}
//
// # Errors
//
// Every failure is surfaced as a *cloudlift.Error carrying an ErrorKind
// discriminant: validation (bad argument, no request issued), api (non-2xx
// response with the verbatim body), timeout (configured timeout elapsed), or
// transport (any other failure to complete the round trip). Helpers such as
// IsValidation, IsAPI, IsTimeout, and IsTransport make it easy to branch on
// the kind:
//
//	app, err := cli.Apps().Get(ctx, id)
//	if cloudlift.IsAPI(err) {
//	  e := cloudlift.AsError(err)
//	  log.Printf("server said %d: %s", e.StatusCode, e.Body)
//	}
//
// The client never retries; one method call is exactly one HTTP request, and
// each call either fulfills with its documented payload or fails with exactly
// one typed error.
//
// # Open fields
//
// Domain objects tolerate server-introduced fields the client does not model:
// unknown keys are collected into an Extra map on decode and merged back on
// encode. AppStatus likewise accepts status strings outside the documented
// set.
package cloudlift
