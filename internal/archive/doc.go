package archive

// Package archive implements ZIP packaging for model files: extraction of a
// packaged model into a staging directory and re-packaging a staging directory
// back into a deflate-compressed archive.
