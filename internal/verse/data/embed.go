package data

import _ "embed"

//go:embed verses.yaml
var Verses []byte
