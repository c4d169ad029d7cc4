// Package io exports tournament brackets as JSON reports.
//
// # Overview
//
// A report is a snapshot of a bracket for external tools: dashboards, diffing
// two runs, or archiving a result. Export is one-way; reports are never read
// back into a tournament.
//
// # JSON Format
//
//	{
//	  "id": "6f1c1c9e-8f0e-4f6a-9d59-2f8c0c0f5e2a",
//	  "name": "Winner 127",
//	  "root": 0,
//	  "rounds": 1,
//	  "complete": 1,
//	  "entrants": ["1", "2"],
//	  "nodes": [
//	    {"id": 0, "kind": "round", "complete": true, "result": "B", "metadata": "2 wins by 1!"},
//	    {"id": 1, "kind": "entrant", "entrant": 0},
//	    {"id": 2, "kind": "entrant", "entrant": 1}
//	  ],
//	  "edges": [
//	    {"from": 0, "to": 1, "side": "A"},
//	    {"from": 0, "to": 2, "side": "B"}
//	  ],
//	  "winner": {"entrant": 1, "label": "2"}
//	}
//
// Entrants and metadata are formatted with %v. The id is a fresh UUID per
// report. "winner" is present once the grand finals is decided.
package io
