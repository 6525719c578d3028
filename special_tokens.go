package kgrams

// Reserved word tokens and their k-gram codes. User text containing these
// literal strings is treated as the corresponding special token; real
// words never collide with them since dictionary indices start at 1.
const (
	BOSTok = "___BOS___"
	EOSTok = "___EOS___"
	UNKTok = "___UNK___"

	BOSInd = "-1"
	EOSInd = "0"
	UNKInd = "-2"
)
