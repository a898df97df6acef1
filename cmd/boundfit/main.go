package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tednaleid/nthprime/bound"
)

// Function to check if a number is prime
func isPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	limit := bound.SqrtCeil(n)
	for i := uint64(2); i <= limit && i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Function to generate prime numbers
func generatePrimes(n int) []uint64 {
	primes := []uint64{}
	for i := uint64(2); len(primes) < n; i++ {
		if isPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}

// fit prints every sampleEvery-th row plus any violation and returns how many
// bounds fell below their prime
func fit(maxN int, sampleEvery int, out io.Writer) int {
	violations := 0
	minSlack := 0.0

	for i, p := range generatePrimes(maxN) {
		n := uint64(i + 1)
		estimate := bound.EstimateBound(n)
		slack := float64(estimate)/float64(p) - 1

		if i == 0 || slack < minSlack {
			minSlack = slack
		}

		if estimate < p {
			violations++
			fmt.Fprintf(out, "%d\t%d\t%d\tVIOLATION\n", n, p, estimate)
		} else if n%uint64(sampleEvery) == 0 {
			fmt.Fprintf(out, "%d\t%d\t%d\t%.4f\n", n, p, estimate, slack)
		}
	}

	fmt.Fprintf(out, "checked %d primes, %d violations, minimum slack %.4f\n", maxN, violations, minSlack)
	return violations
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: boundfit <max n> [sample every]")
		os.Exit(1)
	}

	maxN, err := strconv.Atoi(os.Args[1])
	if err != nil || maxN < 1 {
		fmt.Println("Invalid max n. Please enter a positive integer.")
		os.Exit(1)
	}

	sampleEvery := 1000
	if len(os.Args) > 2 {
		sampleEvery, err = strconv.Atoi(os.Args[2])
		if err != nil || sampleEvery < 1 {
			fmt.Println("Invalid sample interval. Please enter a positive integer.")
			os.Exit(1)
		}
	}

	if fit(maxN, sampleEvery, os.Stdout) > 0 {
		os.Exit(1)
	}
}
