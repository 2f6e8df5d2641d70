package main

import (
	"github.com/airenas/groq-transcriber/internal/app/transcribe"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	transcribe.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
   ____ __________  ____ _
  / __ '/ ___/ __ \/ __ '/
 / /_/ / /  / /_/ / /_/ /
 \__, /_/   \____/\__, /
/____/              /_/
   __                                 _ __
  / /__________ _____  ___________   (_) /_  ___
 / __/ ___/ __ '/ __ \/ ___/ ___/ | / / __ \/ _ \
/ /_/ /  / /_/ / / / (__  ) /__ | |/ / /_/ /  __/
\__/_/   \__,_/_/ /_/____/\___/ |___/_.___/\___/  v: %s
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("github.com/airenas/groq-transcriber"))
}
