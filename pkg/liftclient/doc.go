// Package liftclient constructs concrete Cloudlift API clients.
//
// The cloudlift package defines the types and interfaces; this package wires
// configuration and transport into an implementation. Typical usage:
//
//	cli, err := liftclient.NewWithToken(os.Getenv("CLOUDLIFT_TOKEN"))
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	apps, err := cli.Apps().List(ctx)
//
// Use New with a full cloudlift.Config to override the endpoint, timeout,
// user agent, or to enable debug tracing with a custom logger.
package liftclient
