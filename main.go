package main

import "github.com/forum-civic/forum-services/cmd"

// @title Forum Services API
// @version v1
// @description Location scoped posts, friends, and civic and campaign finance lookups for Forum.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
