package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/girkit/girgen"
	"github.com/girkit/girgen/analysis"
	"github.com/girkit/girgen/config"
	"github.com/girkit/girgen/gir"
)

func main() {
	var (
		manifestFile = flag.String("manifest", "", "Path to library manifest (JSON)")
		configFile   = flag.String("config", "", "Path to override configuration (TOML)")
		funcName     = flag.String("func", "", "Only lower the named function")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose analysis logging")
	)
	flag.Parse()

	if *manifestFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: girgen -manifest <lib.json> [-config overrides.toml] [-func name]")
		fmt.Fprintln(os.Stderr, "       girgen -manifest <lib.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			analysis.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, falling back to batch mode")
		*interactive = false
	}

	if err := run(*manifestFile, *configFile, *funcName, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type lowered struct {
	fn     gir.Function
	params *analysis.Parameters
}

func run(manifestFile, configFile, funcName string, interactive bool) error {
	env, functions, options, err := loadManifest(manifestFile)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	if funcName != "" {
		filtered := functions[:0]
		filteredOpts := options[:0]
		for i := range functions {
			if functions[i].Name == funcName {
				filtered = append(filtered, functions[i])
				filteredOpts = append(filteredOpts, options[i])
			}
		}
		functions, options = filtered, filteredOpts
		if len(functions) == 0 {
			return fmt.Errorf("function %q not in manifest", funcName)
		}
	}

	results := lowerAll(env, functions, options, cfg)

	if interactive {
		return runInteractive(env, results)
	}

	fmt.Println(titleStyle.Render("girgen") + " " + manifestFile)
	fmt.Println()
	for i := range results {
		fmt.Println(renderFunction(env, &results[i].fn, results[i].params))
	}
	return nil
}

// lowerAll runs the engine over every function concurrently. The environment
// and configuration are read-only during lowering, so no locking is needed;
// results land at their input index to keep output order stable.
func lowerAll(env *gir.Env, functions []gir.Function, options []girgen.Options, cfg *config.Config) []lowered {
	results := make([]lowered, len(functions))

	var wg sync.WaitGroup
	for i := range functions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lowered{
				fn:     functions[i],
				params: girgen.Lower(env, &functions[i], cfg, options[i]),
			}
		}(i)
	}
	wg.Wait()

	return results
}
