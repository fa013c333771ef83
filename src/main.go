package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"wraplife/src/config"
	"wraplife/src/simulation"
	"wraplife/src/universe"
	"wraplife/src/view"
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	emptyField  bool
	plot        bool
	text        bool
	storage     string
	configFile  string
	pattern     string
}

func main() {
	eo, cfg := initOptions()

	uo := cfg.UniverseOptions()
	if eo.pattern != "" {
		//the single pattern in the center replaces the default stamps
		p, err := universe.PatternByName(eo.pattern)
		if err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
		var x, y uint32
		if pw, ph := p.Size(); pw < cfg.Width && ph < cfg.Height {
			x, y = (cfg.Width-pw)/2, (cfg.Height-ph)/2
		}
		uo.Stamps = []universe.Stamp{{Pattern: eo.pattern, X: x, Y: y}}
	}

	u, err := universe.NewWithOptions(uo)
	if err != nil {
		log.Fatalf("can't create the universe: %v", err)
	}

	var stateCh chan simulation.Status
	if !eo.interactive {
		stateCh = make(chan simulation.Status, 10) //the buffered channel to getting the runner status
	}
	r := simulation.NewRunner(u, cfg.RunnerOptions(), stateCh, cfg.Seed)

	if eo.interactive {
		v := view.NewViewTerminal()
		r.RegisterViewer(v)
		v.Start()
		r.Close()
		return
	}

	v := view.NewConsoleOut(eo.plot)
	r.RegisterViewer(v)
	fmt.Printf("\"The Life\" toroidal simulation started...\n")
	v.Start()
	r.Run()
	for st := range stateCh {
		if st.RunningMode == simulation.RunningStateFinished {
			break
		}
	}
	<-v.Done()
	r.Close()
	if eo.text {
		fmt.Print(view.Text(r.Snapshot()))
	}
}

//initOptions parses the command line on top of the config file
func initOptions() (eo *EnvOptions, cfg *config.Config) {

	storageNames := make([]string, 0, len(universe.StorageKinds))
	for _, k := range universe.StorageKinds {
		storageNames = append(storageNames, string(k))
	}
	eo = &EnvOptions{}
	cli := config.Default()
	var seed int64
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.configFile, "c", "config", "Config file (yaml), the command line flags override its values")
	flaggy.UInt32(&cli.Width, "x", "width", "Width of a simulation field")
	flaggy.UInt32(&cli.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&cli.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&cli.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Int64(&seed, "d", "seed", "Random seed, the current time is used when omitted")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.emptyField, "e", "empty", "Start with the dead field, only the stamps are alive")
	flaggy.String(&eo.storage, "t", "storage", "Cells storage to use ["+strings.Join(storageNames, "|")+"]")
	flaggy.String(&eo.pattern, "p", "pattern", "Place the single pattern in the center ["+strings.Join(universe.PatternNames(), "|")+"]")
	flaggy.Bool(&eo.plot, "g", "plot", "Plot the population chart on finish")
	flaggy.Bool(&eo.text, "o", "output", "Print the last generation on finish")

	flaggy.Parse()

	cfg = config.Default()
	if eo.configFile != "" {
		var err error
		if cfg, err = config.Load(eo.configFile); err != nil {
			log.Fatalf("can't load the config: %v", err)
		}
	}

	//the flags given on the command line win over the file
	def := config.Default()
	if cli.Width != def.Width {
		cfg.Width = cli.Width
	}
	if cli.Height != def.Height {
		cfg.Height = cli.Height
	}
	if cli.Interval != def.Interval {
		cfg.Interval = cli.Interval
	}
	if cli.MaxSteps != def.MaxSteps {
		cfg.MaxSteps = cli.MaxSteps
	}
	if eo.storage != "" {
		cfg.Storage = eo.storage
	}
	if eo.randomData {
		cfg.Seeding = string(universe.SeedRandom)
	}
	if eo.emptyField {
		cfg.Seeding = string(universe.SeedDead)
	}
	if seed != 0 {
		cfg.Seed = seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if !eo.interactive {
		flaggy.ShowHelp("")
	}

	return
}
