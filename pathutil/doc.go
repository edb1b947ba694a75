// Package pathutil builds and manages filesystem paths relative to the
// working directory, following the convention of keeping project data
// under a dedicated data directory.
//
// What:
//
//   - Cd / CdMk: join path elements onto the working directory,
//     optionally creating the resulting directory.
//   - Cdd / CddIn / CddMk: the same, rooted at the data directory
//     ("Data" by default).
//   - RegulateDataDir: normalise a user-supplied data directory to an
//     absolute, cleaned path.
//   - IsDirPath: report whether a string carries a directory component.
//   - RemoveDir: delete a directory tree, demanding confirmation when
//     it is non-empty.
//
// Errors are plain os errors wrapped with context; the only sentinel is
// ErrNotConfirmed, returned when a RemoveDir confirmation is declined.
package pathutil
