// Package searchlab is the engine behind a step-by-step graph search
// visualiser: it builds graphs, runs BFS, DFS, UCS and A* one step at a
// time, and keeps an immutable snapshot of every step for replay.
//
// 🚀 What is searchlab?
//
//	A thread-safe, headless core that brings together:
//		• Graph model: nodes with sequential ids, undirected optionally weighted links
//		• Random connected graphs with a degree cap (builder)
//		• Hop-count heuristics towards a goal (heuristic)
//		• Resumable searches emitting (message, snapshot) events (search)
//		• An append-only step history with back/forward/jump (history)
//		• A paced, cancellable run controller (runner)
//		• One façade owning all of the above (session)
//
// ✨ Why a headless core?
//
//   - Deterministic: seeded generation and a virtual-clock scheduler make
//     every run reproducible in tests
//   - Safe to edit mid-run: runs work on a clone, snapshots never alias live state
//   - Observable: slog logging, Prometheus metrics and an OpenTelemetry span per run
//
// Packages:
//
//	core/          Graph, Link, Weight and the ordered adjacency
//	builder/       RandomConnected and weight policies
//	heuristic/     hop-count × minimum-weight estimates
//	snapshot/      immutable step state, overlay projection, search tree and stats
//	search/        BFS, DFS, UCS, A* steppers and the synchronous Drive loop
//	history/       the step log and its cursor
//	runner/        schedulers and the run Controller
//	session/       the single owner of live state
//	config/        YAML configuration with hot reload
//	metrics/       Prometheus collectors
//	cmd/searchlab  headless CLI
//
// Quick ASCII example (the diamond used throughout the tests):
//
//	      1
//	   0 ─── 1
//	 5 │     │ 5
//	   2 ─── 3
//	      2
//
// UCS from 0 to 3 expands 0, 1, 2, 3 and returns 0 → 1 → 3 with cost 6.
//
//	go run ./cmd/searchlab run -a ucs -w -n 12 --goal 7
package searchlab
