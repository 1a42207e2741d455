// Command fjsort ranks a list of items by asking the minimal number of
// pairwise "which is better" questions, using the Ford–Johnson sorter in
// package sorter and its resumable counterpart in package stepper.
//
// Usage:
//
//	fjsort -items "Blue,Orange,Red,Black,Green,Yellow,Purple,White"
//	echo -e "Blue\nOrange\nRed" | fjsort -resume "aab"
//	fjsort -items "A,B,C,D,E" -resume "aab"
//
// Items are taken from -items (comma-separated) if given, otherwise read
// one per line from standard input. -resume feeds a hashcode-encoded
// answer prefix through the stepper before falling back to interactive
// prompting, the terminal analogue of a browser reloading a URL hash
// mid-sort. Interactive answers are read from standard input too, so when
// the items come from standard input it is already at end of input: every
// comparison must then be answered by -resume, and one it does not cover
// ends the run with an error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/fjsort/hashcode"
	"github.com/katalvlaran/fjsort/stepper"
)

func main() {
	itemsFlag := flag.String("items", "", "comma-separated items to rank; reads stdin (one per line) if omitted")
	resumeFlag := flag.String("resume", "", "hashcode-encoded answer prefix to replay before prompting interactively")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items, err := loadItems(*itemsFlag)
	if err != nil {
		log.Fatalf("fjsort: %v", err)
	}
	if len(items) == 0 {
		log.Fatalf("fjsort: no items to rank")
	}

	ranking, err := rank(ctx, items, hashcode.DecodeAnswers(*resumeFlag))
	if err != nil {
		log.Fatalf("fjsort: %v", err)
	}

	printRanking(ranking)
}

// loadItems reads items from raw (split on commas, trimmed, empties
// dropped) if non-empty, otherwise reads one item per line from stdin.
func loadItems(raw string) ([]string, error) {
	if raw != "" {
		var items []string
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	}

	var items []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return items, nil
}

// rank drives a Stepper over len(items), consuming resumeAnswers before
// falling back to an interactive prompt on stdin for anything the resumed
// answers didn't cover.
func rank(ctx context.Context, items []string, resumeAnswers []bool) ([]string, error) {
	s := stepper.New(len(items))
	scanner := bufio.NewScanner(os.Stdin)
	resumed := 0

	for {
		switch step := s.Step().(type) {
		case stepper.Compare:
			var (
				answer bool
				err    error
			)
			if resumed < len(resumeAnswers) {
				answer = resumeAnswers[resumed]
				resumed++
			} else {
				answer, err = promptCompare(ctx, scanner, items[step.A], items[step.B])
				if err != nil {
					return nil, err
				}
			}
			s.Answer(answer)

		case stepper.Done:
			order, ok := s.TakeOrder()
			if !ok {
				// Unreachable: Done is only ever returned once TakeOrder
				// can succeed, and rank never calls it twice.
				return nil, fmt.Errorf("fjsort: sort finished without a final order")
			}
			ranked := make([]string, len(order))
			for i, idx := range order {
				ranked[i] = items[idx]
			}
			return ranked, nil
		}
	}
}

// promptCompare asks which of a, b is better, re-prompting on anything
// other than a case-insensitive "a" or "b", and honors ctx cancellation
// (e.g. on Ctrl-C) between prompts.
func promptCompare(ctx context.Context, scanner *bufio.Scanner, a, b string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		fmt.Printf("Which is better? Type A or B: [%s] vs [%s] ", a, b)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			return false, fmt.Errorf("reading answer: unexpected end of input")
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "a":
			return true, nil
		case "b":
			return false, nil
		default:
			fmt.Println("Please type A or B")
		}
	}
}

func printRanking(ranking []string) {
	fmt.Println("Final ranking:")
	if len(ranking) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i, name := range ranking {
		fmt.Printf("%d. %s\n", i+1, name)
	}
}
