package util

import (
	"os"

	"golang.org/x/exp/constraints"
)

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func EnsureOutputDir(dir string) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic("Could not create output dir because: " + err.Error())
	}
}

func ReadFileOrPanic(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read file: " + err.Error())
	}
	return data
}

func WriteFileOrPanic(path string, data []byte) {
	err := os.WriteFile(path, data, 0666)
	if err != nil {
		panic("Write failed for file: " + path + " because: " + err.Error())
	}
}
