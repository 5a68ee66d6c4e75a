// Package graph provides the serialization format of layout passes.
//
// This package defines the canonical wire format for solargraph layouts,
// used for JSON files, API responses, caching and the visualize command.
//
// # Architecture
//
// The package sits at the serialization boundary:
//
//   - pkg/layout.Graph: the result of a pass, with pointers between nodes,
//     ports and edges
//   - [Layout]: a flat, pointer-free copy of it (this package)
//
// Use [FromLayout] to convert, then [MarshalLayout], [WriteLayout] or
// [WriteLayoutFile] to encode. [ReadLayout] and [ReadLayoutFile] decode and
// validate.
//
// # Format
//
//	{
//	  "version": 1,
//	  "width": 440,
//	  "height": 120,
//	  "nodes": [{"id": "a", "row": 0, "column": 0, "x": 40, "y": 40, ...}],
//	  "edges": [{"id": "a / V1 / next --> b / V1", "type": "top-right",
//	             "category": "service", "channels": [0, 0, 0], "path": "M ..."}],
//	  "layers": [2, 2],
//	  "columns": [0, 1, 1, 0]
//	}
//
// # Concurrency
//
// All functions are safe for concurrent use; none keep state.
package graph
