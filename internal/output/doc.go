// Package output emits a generated payload either to a console stream or to
// one JSON file per chunk.
//
// File names derive from the requested destination: "out/screen.json" with
// 250 records yields out/screen_1-100.json, out/screen_101-200.json and
// out/screen_201-250.json. A destination without a stem uses "predictions";
// one without a suffix uses ".json".
package output
