// SPDX-License-Identifier: MIT

package tsp

// White-box bridge for package tsp_test.

// ExportedNearestNeighbor exposes the incumbent seed.
var ExportedNearestNeighbor = nearestNeighbor

// ExportedFrontierKey exposes the queue ordering.
var ExportedFrontierKey = frontierKey
