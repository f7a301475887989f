package transform

// Package transform implements the core model pipeline: loading a model from
// disk (plain JSON or ZIP-packaged), merging the fixed style catalog into its
// configuration, and saving it back in the source format. The three operations
// are synchronous and are used strictly in sequence per file.
