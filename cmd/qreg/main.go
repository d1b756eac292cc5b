// qreg allocates a register, applies one gate to every qubit, measures the
// whole register and repeats for a number of shots, printing the outcome
// histogram as CSV.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qreg"
)

const header = "Outcome, Count, Probability"

func main() {
	flags := pflag.NewFlagSet("qreg", pflag.ExitOnError)
	flags.Int("qubits", 2, "Number of qubits to allocate.")
	flags.Int("shots", 1024, "Number of times to prepare and measure the register.")
	flags.Int("workers", 0, "Goroutines running shots; 0 uses one per CPU.")
	flags.Uint64("seed", 42, "Seed for the measurement random source.")
	flags.String("gate", "h", "Gate applied to every qubit: x, y, z, h, s, t or id.")
	flags.Bool("start-one", false, "Allocate qubits in |1> instead of |0>.")
	flags.String("config", "", "Optional config file (yaml, toml or json).")
	flags.Parse(os.Args[1:])

	v := viper.New()
	v.SetEnvPrefix("QREG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		log.Fatalf("Binding flags: %v", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("Reading config %s: %v", path, err)
		}
	}

	op, ok := qreg.GateByName(strings.ToLower(v.GetString("gate")))
	if !ok {
		log.Fatalf("Unknown gate %q", v.GetString("gate"))
	}

	initial := qreg.Zero
	if v.GetBool("start-one") {
		initial = qreg.One
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	qubits := v.GetInt("qubits")
	metrics := qreg.NewMetrics()
	hist, err := qreg.RunShots(ctx, v.GetInt("shots"), uniformCircuit(qubits, op),
		qreg.WithSeed(v.GetUint64("seed")),
		qreg.WithWorkers(v.GetInt("workers")),
		qreg.WithInitialValue(initial),
		qreg.WithMetrics(metrics),
	)
	if err != nil {
		log.Fatalf("Running shots (qubits: %d, gate: %s): %v", qubits, v.GetString("gate"), err)
	}

	fmt.Println(header)
	for _, key := range hist.Keys() {
		fmt.Printf("%s, %d, %.4f\n", key, hist[key], hist.Probability(key))
	}

	errnie.Info("metrics %v", metrics.ExportMetrics())
}

func uniformCircuit(qubits int, op qreg.Operation) qreg.Circuit {
	return func(s *qreg.State) ([]qreg.Measurement, error) {
		for i := 0; i < qubits; i++ {
			if err := op.Apply(s.Qubit()); err != nil {
				return nil, err
			}
		}
		return s.MeasureAll()
	}
}
