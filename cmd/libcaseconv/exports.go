package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

func goText(text *C.char) string {
	if text == nil {
		return ""
	}
	return C.GoString(text)
}

func cResult(s string, ok bool) *C.char {
	if !ok {
		return nil
	}
	return C.CString(s)
}

//export caseconv_convert_case
func caseconv_convert_case(text *C.char, from, to C.int) *C.char {
	return cResult(convertCase(goText(text), int(from), int(to)))
}

//export caseconv_guess_case
func caseconv_guess_case(text *C.char) C.int {
	return C.int(guessCase(goText(text)))
}

//export caseconv_unjumble
func caseconv_unjumble(text *C.char, to C.int) *C.char {
	return cResult(unjumble(goText(text), int(to)))
}

//export caseconv_guess_and_convert
func caseconv_guess_and_convert(text *C.char, to C.int) *C.char {
	return cResult(guessAndConvert(goText(text), int(to)))
}

//export caseconv_free_string
func caseconv_free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}
