package main

// Version is the update-version CLI's own version.
var Version = "1.0.0"
