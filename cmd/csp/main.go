package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/csp/internal/combo"
	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/generator"
	"svw.info/csp/internal/infrastructure/storage"
	"svw.info/csp/internal/ports"
	"svw.info/csp/internal/schedule"
	"svw.info/csp/internal/solver"
	"svw.info/csp/internal/usecase"
	"svw.info/csp/internal/validator"
)

// The classic 81-cell fixture with a unique solution.
var classic = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func main() {
	scenario := flag.String("scenario", "all", "grid|schedule|shopping|all")
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	clues := flag.Int("clues", 30, "clue target for generated puzzles")
	persist := flag.String("persist-path", "", "save generated puzzles here (optional)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	timeout := flag.Duration("timeout", 30*time.Second, "overall wall-clock bound")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Wire providers → use cases, same shape as the solver service.
	s := solver.NewBacktracking()
	g := generator.NewRandomGenerator(s)
	v := validator.New()
	var store ports.Storage
	if *persist != "" {
		store = storage.NewFS(*persist)
	}
	uc := usecase.NewService(s, g, v, store)

	switch strings.ToLower(*scenario) {
	case "grid":
		runGrid(ctx, logger, uc, *seed, *clues, store != nil)
	case "schedule":
		runSchedule(ctx, logger)
	case "shopping":
		runShopping(ctx, logger)
	default:
		runGrid(ctx, logger, uc, *seed, *clues, store != nil)
		runSchedule(ctx, logger)
		runShopping(ctx, logger)
	}
}

func runGrid(ctx context.Context, logger *slog.Logger, uc *usecase.Service, seed int64, clues int, persist bool) {
	logger.Info("grid: generating puzzle", "seed", seed, "clues", clues)
	p, st, err := uc.Generate(ctx, seed, clues)
	if err != nil {
		logger.Error("generate failed", "err", err)
		return
	}
	if p.Degraded {
		logger.Warn("generation degraded: solvability unconfirmed", "clues", p.Clues)
	}
	logger.Info("generated", "clues", p.Clues, "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	printBoard(p.Board.Values)

	solved, st, err := uc.Solve(ctx, &p.Board)
	if err != nil {
		logger.Error("solve failed", "err", err)
	} else {
		ok, conf, _ := uc.Validate(ctx, solved)
		logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond), "valid", ok, "conflicts", len(conf))
		printBoard(solved.Values)
	}

	fixture := &domain.Board{Values: classic}
	sols, st, err := uc.Count(ctx, fixture, 2)
	if err != nil {
		logger.Error("count failed", "err", err)
		return
	}
	logger.Info("classic fixture", "solutions", len(sols), "cap", 2, "nodes", st.Nodes)

	if persist {
		p.ID = fmt.Sprintf("seed-%d", seed)
		if err := uc.Save(ctx, p); err != nil {
			logger.Error("save failed", "err", err)
		}
	}
}

func runSchedule(ctx context.Context, logger *slog.Logger) {
	cases := []struct {
		name      string
		tasks     []domain.Task
		resources int
	}{
		{"chained overlaps", []domain.Task{{ID: 1, Start: 0, End: 3}, {ID: 2, Start: 2, End: 5}, {ID: 3, Start: 4, End: 7}}, 2},
		{"triple overlap, short one resource", []domain.Task{{ID: 1, Start: 0, End: 5}, {ID: 2, Start: 1, End: 6}, {ID: 3, Start: 2, End: 7}}, 2},
		{"sequential, single resource", []domain.Task{{ID: 1, Start: 0, End: 2}, {ID: 2, Start: 2, End: 4}, {ID: 3, Start: 4, End: 6}, {ID: 4, Start: 6, End: 8}}, 1},
		{"all overlapping", []domain.Task{{ID: 1, Start: 0, End: 10}, {ID: 2, Start: 1, End: 9}, {ID: 3, Start: 2, End: 8}, {ID: 4, Start: 3, End: 7}, {ID: 5, Start: 4, End: 6}}, 5},
	}
	for _, tc := range cases {
		sch, err := schedule.NewScheduler(tc.tasks, tc.resources)
		if err != nil {
			logger.Error("scheduler rejected input", "case", tc.name, "err", err)
			continue
		}
		ok, st, err := sch.Solve(ctx)
		if err != nil {
			logger.Error("schedule solve failed", "case", tc.name, "err", err)
			continue
		}
		logger.Info("schedule", "case", tc.name, "resources", tc.resources, "solved", ok, "nodes", st.Nodes)
		if ok {
			for _, t := range sch.Tasks() {
				fmt.Printf("  task %d [%d,%d) -> resource %d\n", t.ID, t.Start, t.End, t.Resource)
			}
		}
	}
}

func runShopping(ctx context.Context, logger *slog.Logger) {
	party := []domain.Item{
		{Name: "soda", Price: 2.50},
		{Name: "chips", Price: 3.00},
		{Name: "cake", Price: 15.00, MaxQuantity: 1},
		{Name: "pizza", Price: 12.00, MaxQuantity: 2},
	}
	p, err := combo.NewPlanner(party, 30.00, 5)
	if err != nil {
		logger.Error("planner rejected input", "err", err)
		return
	}
	all, st, err := p.FindAll(ctx)
	if err != nil {
		logger.Error("find all failed", "err", err)
		return
	}
	logger.Info("shopping: party", "budget", 30.00, "min", 5, "combinations", len(all), "nodes", st.Nodes)
	for i, c := range all {
		if i == 10 {
			fmt.Printf("  ... and %d more\n", len(all)-10)
			break
		}
		printCombo(c)
	}

	pricey := []domain.Item{
		{Name: "gadget", Price: 20.00, MaxQuantity: 1},
		{Name: "widget", Price: 25.00, MaxQuantity: 1},
	}
	p, err = combo.NewPlanner(pricey, 15.00, 1)
	if err != nil {
		logger.Error("planner rejected input", "err", err)
		return
	}
	one, _, err := p.FindOne(ctx)
	if err != nil {
		logger.Error("find one failed", "err", err)
		return
	}
	logger.Info("shopping: impossible budget", "found", one != nil)
}

func printBoard(g [9][9]uint8) {
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			fmt.Println(strings.Repeat("-", 21))
		}
		var sb strings.Builder
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString("_ ")
			} else {
				fmt.Fprintf(&sb, "%d ", g[r][c])
			}
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}
}

func printCombo(c domain.Combination) {
	fmt.Printf("  %d item(s), $%.2f:", c.TotalQuantity, c.TotalCost)
	for _, e := range c.Entries {
		fmt.Printf(" %dx %s ($%.2f)", e.Quantity, e.Name, e.Subtotal)
	}
	fmt.Println()
}
