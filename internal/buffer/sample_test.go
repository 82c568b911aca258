package buffer_test

//go:generate go run keybuf/cmd/bufgen --type=Sample:4,Wide:200 --debug=pretty --codec --json --yaml --output=sample_buf_test.go
//go:generate go run keybuf/cmd/bufgen --type=RawSample:4 --debug=raw --codec --json --yaml --output=rawsample_buf_test.go

// Sample is a small buffer used to exercise the generated bundle.
type Sample [4]byte

// Wide is long enough to need a two-byte length prefix.
type Wide [200]byte

// RawSample is Sample with the raw debug formatter.
type RawSample [4]byte
