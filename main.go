package main

import "github.com/redactyl/detect-secrets/cmd/detectsecrets"

func main() { detectsecrets.Execute() }
