// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/kwik-go/kwik/configuration"
	"github.com/kwik-go/kwik/format"
	"github.com/kwik-go/kwik/genetic"
	"github.com/kwik-go/kwik/workerpool"
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	Target              string               `gluamapper:"target"`
	PopulationSize      int                  `gluamapper:"population_size"`
	ConvergenceLimit    int                  `gluamapper:"convergence_limit"`
	MaxRuntimeSeconds   int                  `gluamapper:"max_runtime_seconds"`
	MutationProbability float64              `gluamapper:"mutation_probability"`
	EliteRatio          float64              `gluamapper:"elite_ratio"`
	MatingRatio         float64              `gluamapper:"mating_ratio"`
	Workers             int                  `gluamapper:"workers"`
	Seed                int64                `gluamapper:"seed"`
	Logging             logger.Configuration `gluamapper:"logging"`
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "kwik-ga"
	app.Usage = "genetic search runner"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "search for the configured target phrase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "target, t",
					Value: "",
					Usage: " override the configured target `PHRASE`",
				},
			},
			Action: runSearch,
		},
		{
			Name:   "show-config",
			Usage:  "display the parsed configuration",
			Action: runShowConfig,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// getConfiguration - parse the Lua file named by the global config flag
func getConfiguration(c *cli.Context) (*Configuration, error) {
	fileName := c.GlobalString("config")
	if "" == fileName {
		return nil, fmt.Errorf("configuration file is required, use: --config FILE")
	}

	config := &Configuration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	if nil != err {
		return nil, fmt.Errorf("configuration file: %q  error: %s", fileName, err)
	}
	return config, nil
}

func runShowConfig(c *cli.Context) error {
	config, err := getConfiguration(c)
	if nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%+v\n", *config)
	return nil
}

func runSearch(c *cli.Context) error {
	config, err := getConfiguration(c)
	if nil != err {
		return err
	}

	target := config.Target
	if "" != c.String("target") {
		target = c.String("target")
	}
	if "" == target {
		return fmt.Errorf("target phrase is required, use: --target PHRASE")
	}

	// start logging
	if err = logger.Initialise(config.Logging); nil != err {
		return fmt.Errorf("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Infof("target: %q", target)

	options := []genetic.Option{}
	if config.PopulationSize > 0 {
		options = append(options, genetic.WithPopulationSize(config.PopulationSize))
	}
	if config.ConvergenceLimit > 0 {
		options = append(options, genetic.WithConvergenceLimit(uint64(config.ConvergenceLimit)))
	}
	if config.MaxRuntimeSeconds > 0 {
		options = append(options, genetic.WithMaxRuntime(time.Duration(config.MaxRuntimeSeconds)*time.Second))
	}
	if config.MutationProbability > 0 {
		options = append(options, genetic.WithMutationProbability(config.MutationProbability))
	}
	if config.EliteRatio > 0 {
		options = append(options, genetic.WithEliteRatio(config.EliteRatio))
	}
	if config.MatingRatio > 0 {
		options = append(options, genetic.WithMatingRatio(config.MatingRatio))
	}
	if 0 != config.Seed {
		options = append(options, genetic.WithSeed(config.Seed))
	}

	var pool *workerpool.Pool
	if config.Workers > 0 {
		pool, err = workerpool.New(config.Workers)
		if nil != err {
			return fmt.Errorf("worker pool error: %s", err)
		}
		defer pool.Stop()
		options = append(options, genetic.WithWorkers(pool))
	}

	search, err := genetic.New(newPhrase(target), options...)
	if nil != err {
		return fmt.Errorf("search setup error: %s", err)
	}

	solution, err := search.Run()
	if nil != err {
		return fmt.Errorf("search error: %s", err)
	}

	phrase := solution.Chromosome.(*phraseChromosome)
	fmt.Fprintf(c.App.Writer, "result:      %q\n", phrase.text())
	fmt.Fprintf(c.App.Writer, "fitness:     %s\n", format.Number(uint64(phrase.Fitness())))
	fmt.Fprintf(c.App.Writer, "generations: %s\n", format.Number(solution.Generations))
	fmt.Fprintf(c.App.Writer, "runtime:     %s\n", format.Timespan(uint64(solution.Runtime.Milliseconds())))

	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.Writer, "target:      %q\n", target)
		fmt.Fprintf(c.App.Writer, "exact match: %t\n", phrase.text() == target)
	}
	return nil
}
