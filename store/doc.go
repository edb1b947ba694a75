// Package store saves and loads object and tabular data to local
// files, creating parent directories as needed and dispatching on the
// file extension.
//
// What:
//
//   - SaveJSON / LoadJSON — encoding/json.
//   - SaveYAML / LoadYAML — gopkg.in/yaml.v3.
//   - SaveGob / LoadGob — encoding/gob, the Go-native binary format.
//   - Table with SaveCSV / LoadCSV — simple tabular data with a header
//     row and a configurable separator.
//   - Save — picks the codec from the path's extension
//     (.json, .yaml/.yml, .csv; anything else is written as gob).
//
// Every writer creates the file's parent directories first, so a path
// like "Data/out/result.json" works against an empty tree.
package store
