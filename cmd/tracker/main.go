// Command tracker processes sensor packages offline and prints one
// report line per package. Packages are given as CODE:v1,v2,... args;
// without args it runs the three reference packages.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

var defaultPackages = []string{
	"SWM:720,1,80,25,40",
	"RUN:15000,1,75",
	"WLK:9000,1,75,180",
}

func main() {
	flag.Parse()

	packages := flag.Args()
	if len(packages) == 0 {
		packages = defaultPackages
	}

	for _, pkg := range packages {
		code, values, err := parseArg(pkg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tracker:", err)
			os.Exit(1)
		}

		t, err := workout.ParsePackage(code, values)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tracker:", err)
			os.Exit(1)
		}

		fmt.Println(workout.Summarize(t).Message())
	}
}

func parseArg(arg string) (string, []float64, error) {
	code, rawValues, ok := strings.Cut(arg, ":")
	if !ok {
		return "", nil, fmt.Errorf("malformed package %q, want CODE:v1,v2,...", arg)
	}

	parts := strings.Split(rawValues, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", nil, fmt.Errorf("malformed package %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return code, values, nil
}
