package transform

import "github.com/matzehuels/solargraph/pkg/dag"

// AssignLayers assigns every node a row equal to its depth in the graph and
// returns the IDs of nodes it could not place.
//
// AssignLayers uses a longest-path algorithm via topological sort (Kahn's
// algorithm). Each node is placed at one plus the maximum row of any of its
// parents, ensuring that:
//   - Source nodes (no incoming edges) are at row 0
//   - All parents are strictly above their children
//   - Each node is pushed as deep as necessary to avoid parent conflicts
//
// Existing row assignments in the DAG are overwritten.
//
// # Algorithm
//
//  1. Seed the queue with all source nodes (in-degree 0) in ID order at row 0
//  2. Pop a node; push each child to max(child row, current row + 1)
//  3. Decrement the child's in-degree; enqueue it when it reaches zero
//  4. Repeat until the queue is empty
//
// # Cycles
//
// Nodes on a cycle never reach zero in-degree and are never dequeued. The
// same holds for every node reachable from a cycle. Those nodes are moved to
// row [dag.Unplaced] and returned in ID order. A nil result means the graph
// is acyclic and every node has a row.
//
// # Performance
//
// Time complexity is O(V log V + E): sorting the seed set dominates on sparse
// graphs. Space complexity is O(V).
func AssignLayers(g *dag.DAG) []string {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
			rows[n.ID] = 0
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	var unplaced []string
	for _, n := range nodes {
		if inDegree[n.ID] > 0 {
			unplaced = append(unplaced, n.ID)
			rows[n.ID] = dag.Unplaced
		}
	}

	g.SetRows(rows)
	return unplaced
}
