package main

import (
	"flag"
	"os"
	"videopoker-server/internal/config"

	"gopkg.in/yaml.v2"
)

var output = flag.String("o", "", "write the configuration to a file instead of stdout")

func main() {
	flag.Parse()

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		out = f
	}

	if err := yaml.NewEncoder(out).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
