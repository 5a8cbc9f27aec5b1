// Package zon implements ZON (Zero Overhead Notation), a line-oriented
// UTF-8 text serialization of the JSON data model with a reduced token
// footprint.
//
// ZON is designed to be:
//   - Token-cheap (bare strings, CSV-style tables, no structural noise)
//   - Deterministic + canonical (stable byte-for-byte output)
//   - Losslessly round-trippable to the JSON data model
//   - Safe to decode (resource limits, prototype-pollution rejection)
//
// # Data Model
//
// Scalars: null, bool, int, float, str
// Containers: arr (ordered), obj (ordered, keys sorted on encode)
//
// # Syntax
//
// Metadata:       key:value
// Table:          key:@(N):col1,col2,...  followed by N CSV rows
// Root table:     @(N):col1,col2,...
// Inline object:  key:"{k:v,k2:v2}"
// Inline array:   key:"[v1,v2]"
// Dotted keys:    parent.child:value  (reconstructed as nested objects)
// Null:           null
// Bool:           T / F
// String:         bare or "quoted string"
//
// # Example
//
//	context:"{location:Boulder,season:spring_2025,task:Our favorite hikes together}"
//	friends:"[ana,luis,sam]"
//	hikes:@(3):companion,distanceKm,elevationGain,id,name,wasSunny
//	ana,7.5,320,1,Blue Lake Trail,T
//	luis,9.2,540,2,Ridge Overlook,F
//	sam,5.1,180,3,Wildflower Loop,T
//
// # Strictness
//
// Decoding is strict by default: declared row counts, per-row field counts,
// escape sequences, UTF-8 well-formedness and resource limits are all
// enforced with fixed error codes. Non-strict mode degrades row/field count
// mismatches to best-effort reconstruction; everything else stays fatal.
package zon
