// Command varqus runs a VQE ground-state calculation for minimal-basis H₂
// and prints a styled report: circuit resources, mean-field reference,
// optimized energy, and optionally the reduced density matrices.
//
// Usage:
//
//	varqus [-ansatz uccsd|ucc1|ucc3] [-up-then-down] [-freeze 1,3]
//	       [-shots N] [-noise p] [-seed N] [-rdm] [-verbose]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/varqus/varqus/chem"
	"github.com/varqus/varqus/simulator"
	"github.com/varqus/varqus/vqe"
)

func main() {
	var (
		ansatzName = flag.String("ansatz", "uccsd", "ansatz: uccsd, ucc1 or ucc3")
		upThenDown = flag.Bool("up-then-down", false, "blocked spin ordering (required by ucc1/ucc3)")
		freeze     = flag.String("freeze", "", "comma-separated frozen orbital indices")
		shots      = flag.Int("shots", 0, "samples per Hamiltonian term, 0 for exact expectation values")
		noise      = flag.Float64("noise", 0, "depolarizing probability per gate (needs -shots)")
		seed       = flag.Int64("seed", 0, "sampling seed, 0 for time-based")
		rdm        = flag.Bool("rdm", false, "print reduced density matrices at the optimum")
		verbose    = flag.Bool("verbose", false, "log every energy evaluation")
	)
	flag.Parse()

	if err := run(*ansatzName, *freeze, *upThenDown, *shots, *noise, *seed, *rdm, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("varqus: "+err.Error()))
		os.Exit(1)
	}
}

func run(ansatzName, freeze string, upThenDown bool, shots int, noise float64, seed int64, rdm, verbose bool) error {
	frozen, err := parseFrozen(freeze)
	if err != nil {
		return err
	}

	mol := chem.H2STO3G()
	mf, err := chem.RunRHF(mol)
	if err != nil {
		return err
	}

	opts := vqe.DefaultOptions()
	opts.Molecule = mol
	opts.MeanField = mf
	opts.Ansatz = vqe.AnsatzKind(strings.ToLower(ansatzName))
	opts.FrozenOrbitals = frozen
	opts.UpThenDown = upThenDown
	opts.Verbose = verbose
	opts.Backend = simulator.Options{
		Target: simulator.TargetStatevector,
		Shots:  shots,
		Seed:   seed,
	}
	if noise > 0 {
		opts.Backend.Noise = &simulator.NoiseModel{Depolarizing: noise}
	}

	solver, err := vqe.NewSolver(opts)
	if err != nil {
		return err
	}
	if err := solver.Build(); err != nil {
		return err
	}

	res, err := solver.Resources()
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("varqus · " + mol.Name + " · " + ansatzName))
	fmt.Println(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("qubits", strconv.Itoa(res.Qubits)),
		row("hamiltonian terms", strconv.Itoa(res.HamiltonianTerms)),
		row("gates", strconv.Itoa(res.Gates)),
		row("two-qubit gates", strconv.Itoa(res.TwoQubitGates)),
		row("variational gates", strconv.Itoa(res.VariationalGates)),
		row("parameters", strconv.Itoa(res.Parameters)),
	)))

	energy, err := solver.Simulate()
	if err != nil {
		return err
	}
	fmt.Println(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row("mean-field energy", fmt.Sprintf("%.7f Ha", mf.Energy)),
		row("optimized energy", fmt.Sprintf("%.7f Ha", energy)),
		row("correlation", fmt.Sprintf("%.7f Ha", energy-mf.Energy)),
	)))

	if rdm {
		return printRDM(solver)
	}
	return nil
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func printRDM(solver *vqe.Solver) error {
	rdm1, rdm2, err := solver.GetRDM(solver.OptimalParams())
	if err != nil {
		return err
	}

	n, _ := rdm1.Dims()
	var lines []string
	for i := 0; i < n; i++ {
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			cells[j] = fmt.Sprintf("%10.6f", rdm1.At(i, j))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	fmt.Println(titleStyle.Render("one-particle RDM"))
	fmt.Println(panelStyle.Render(strings.Join(lines, "\n")))

	lines = lines[:0]
	for a := 0; a < rdm2.N(); a++ {
		for b := 0; b < rdm2.N(); b++ {
			for c := 0; c < rdm2.N(); c++ {
				for d := 0; d < rdm2.N(); d++ {
					v := rdm2.At(a, b, c, d)
					if v == 0 {
						continue
					}
					lines = append(lines, fmt.Sprintf("(%d%d|%d%d) %10.6f", a, b, c, d, v))
				}
			}
		}
	}
	fmt.Println(titleStyle.Render("two-particle RDM (nonzero)"))
	fmt.Println(panelStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func parseFrozen(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("frozen orbital %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
