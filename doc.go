// Package ternclique compresses a set of ternary test vectors into a small
// dictionary of wildcard templates.
//
// 🚀 What is ternclique?
//
//	A vector is a fixed-length word over {0, 1, X}, where X is "don't care".
//	Two vectors are compatible when no position holds 0 in one and 1 in the
//	other. Every clique of the pairwise compatibility graph can be replaced
//	by a single merged template that covers each of its members, so a clique
//	cover is a dictionary.
//
// ✨ Pipeline
//
//   - Parse: whitespace-separated tokens, optionally gzip/zstd/lz4 framed
//   - Graph: roaring-bitmap adjacency rows, built in O(n²·L), optionally parallel
//   - Cover: up to max_entries disjoint cliques via the greedy heuristic
//   - Merge: one template per clique (1 wins over 0 wins over X)
//   - Write: "Clique <i>: <template>" lines, or 1-based member lists
//
// Packages:
//
//	ternary/        Symbol, Vector, VectorSet and the compatibility relation
//	compat/         the compatibility Graph, components, matrix dump
//	clique/         greedy and max-degree extraction, the Cover driver
//	template/       clique → template merge with conflict detection
//	dictfile/       vector reader, dictionary writers, compression by extension
//	config/         YAML config with TERNCLIQUE_* environment overrides
//	logging/        zap logger construction
//	metrics/        Prometheus collectors written as a textfile
//	pipeline/       end-to-end Compress and Run
//	cmd/ternclique  the command-line tool
//
// Quick example:
//
//	11XX ─ 1X0X        merged: 1100
//	   ╲   ╱
//	   X100     0011   merged: 0011
//
// yields a two-entry dictionary for a cap of 2, and the message
// "Only 2 dictionary entries are possible" for any larger cap.
//
//	go install github.com/katalvlaran/ternclique/cmd/ternclique@latest
package ternclique
