// SPDX-License-Identifier: MIT
//
// File: messages.go
// Role: step message texts. Costs are rounded to two decimals for display
//       only; comparisons always use full precision.

package search

import (
	"fmt"
	"math"
)

func roundCents(c float64) float64 {
	return math.Round(c*100) / 100
}

// uninformed (BFS/DFS) texts. DFS words differ: Visiting, stack, Visited.
type uninformedWords struct {
	move      string // "Moving to" / "Visiting"
	container string // "queue" / "stack"
	seenLabel string // "Discovered" / "Visited"
}

var (
	bfsWords = uninformedWords{move: "Moving to", container: "queue", seenLabel: "Discovered"}
	dfsWords = uninformedWords{move: "Visiting", container: "stack", seenLabel: "Visited"}
)

func msgRoot(a Algorithm, start int) string {
	return fmt.Sprintf("%s: Root Node %d", a.Label(), start)
}

func msgMove(a Algorithm, w uninformedWords, id int) string {
	return fmt.Sprintf("%s: %s Node %d", a.Label(), w.move, id)
}

func msgDiscovered(a Algorithm, w uninformedWords, id int) string {
	return fmt.Sprintf("%s: Discovered Node %d. Adding to %s.", a.Label(), id, w.container)
}

func msgContainer(a Algorithm, w uninformedWords, pending, seen []int) string {
	title := "Queue"
	if w.container == "stack" {
		title = "Stack"
	}

	return fmt.Sprintf("%s: %s: [%s] | %s: [%s]",
		a.Label(), title, joinIDs(pending, ", "), w.seenLabel, joinIDs(seen, ", "))
}

func msgUninformedGoal(a Algorithm, goal int, path []int) string {
	return fmt.Sprintf("%s: Goal Node %d found! \nPath: %s", a.Label(), goal, joinIDs(path, " -> "))
}

func msgUninformedExhausted(a Algorithm) string {
	return fmt.Sprintf("%s: Finished without reaching a goal", a.Label())
}

// best-first texts; UCS and A* keep their own wording.

func msgExpand(a Algorithm, id int, cost, f float64) string {
	if a == AStar {
		return fmt.Sprintf("A*: Expanding node %d (f=%.2f)", id, f)
	}

	return fmt.Sprintf("UCS: Expanding node [%d] with cost %s.", id, formatCost(cost))
}

func msgSkip(a Algorithm, id int, cost, best float64) string {
	if a == AStar {
		return fmt.Sprintf("A*: Skipping node %d with g=%.2f (better g is %.2f).", id, cost, best)
	}

	return fmt.Sprintf("UCS: Skipping node [%d] with cost %s (better cost is %s).",
		id, formatCost(cost), formatCost(best))
}

func msgRelax(a Algorithm, id int, old float64, hadOld bool, cost, f float64) string {
	if a == AStar {
		return fmt.Sprintf("A*: Discovered %d, g=%.2f, f=%.2f", id, cost, f)
	}
	prev := "none"
	if hadOld {
		prev = formatCost(old)
	}

	return fmt.Sprintf("UCS: Found node [%d], Updating cost from %s to %s.", id, prev, formatCost(cost))
}

func msgReopen(a Algorithm, id int) string {
	if a == AStar {
		return fmt.Sprintf("A*: Reopening node %d (cost improved).", id)
	}

	return fmt.Sprintf("UCS: Reopening node [%d] (cost improved).", id)
}

func msgBestGoal(a Algorithm, goal int, path []int, cost float64) string {
	if a == AStar {
		return fmt.Sprintf("A*: Goal reached! Path: %s", joinIDs(path, " -> "))
	}

	return fmt.Sprintf("UCS: Goal node [%d] reached! Path: %s, Total cost: %s.",
		goal, joinIDs(path, " -> "), formatCost(cost))
}

func msgBestExhausted(a Algorithm) string {
	if a == AStar {
		return "A*: No path found."
	}

	return "UCS: No path found. Frontier empty."
}
