package main

import "github.com/tanasitp/timesheet-management/cmd"

func main() {
	cmd.Execute()
}
