package main

// Version is the tool version, overridable at build time with
// -ldflags "-X main.Version=v1.2.3".
var Version = "0.1.0-dev"
