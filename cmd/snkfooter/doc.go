// Package main hosts the snkfooter CLI entrypoint and command graph.
//
// The root command patches a Platane/snk snake SVG in place, appending the
// genesis block hex dump footer. The inspect command reports what a patch
// would do, and the config commands scaffold and check the optional TOML
// file. Configuration resolution and logger setup live here so the internal
// packages stay free of CLI concerns.
package main
