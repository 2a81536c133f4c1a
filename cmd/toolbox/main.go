package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"strconv"
	"strings"

	toolbox "github.com/grc-cohort-21/midterm-toolbox-333"
)

const usage = `usage: toolbox [-cpuprofile file] [-memprofile file] [-db path] <command> [args]

commands:
  length v...        number of nodes
  tail v...          value of the last node
  nth n v...         value of the n-th node (0-indexed)
  count v...         occurrences of every value
  giants v...        list after removing giants
  insert i x v...    insert x after index i
  remove i v...      remove index i from a doubly linked list
  triple v...        queue after tripling every value
  rotate -k K v...   queue after rotating K places left
  parens [s]         whether s (or stdin) has balanced parentheses
  score name n       store a score
  top                name with the highest stored score
`

var errUsage = errors.New("bad usage")

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to 'file'")
var memprofile = flag.String("memprofile", "", "write mem profile to 'file'")
var dbpath = flag.String("db", "scores.db", "bbolt file holding the score table")

func main() {
	log.SetFlags(0)
	log.SetPrefix("toolbox: ")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }

	// PROFILING SNIPPET
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not *create* CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not *start* CPU profile: ", err)
		}
	}
	// PROFILING SNIPPET

	err := run(os.Stdout, os.Stdin, *dbpath, flag.Args())
	pprof.StopCPUProfile()

	if *memprofile != "" {
		f, ferr := os.Create(*memprofile)
		if ferr != nil {
			log.Fatal("could not *create* memory profile: ", ferr)
		}
		runtime.GC()
		if ferr := pprof.WriteHeapProfile(f); ferr != nil {
			log.Fatal("could not *write* memory profile: ", ferr)
		}
		f.Close()
	}

	if errors.Is(err, errUsage) {
		log.Print(err)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, stdin io.Reader, dbPath string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "length":
		head, err := parseList(args)
		if err != nil {
			return err
		}
		n, err := toolbox.Length(head)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n)
	case "tail":
		head, err := parseList(args)
		if err != nil {
			return err
		}
		tail, err := toolbox.FindTail(head)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, tail.Data)
	case "nth":
		if len(args) < 1 {
			return fmt.Errorf("%w: nth needs an index", errUsage)
		}
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		head, err := parseList(args[1:])
		if err != nil {
			return err
		}
		node, err := toolbox.FindNthElement(head, n)
		if err != nil {
			return err
		}
		if node == nil {
			fmt.Fprintln(w, "<nil>")
		} else {
			fmt.Fprintln(w, node.Data)
		}
	case "count":
		head, err := parseList(args)
		if err != nil {
			return err
		}
		counts, err := toolbox.CountOccurrences(head)
		if err != nil {
			return err
		}
		keys := make([]int, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%d=%d\n", k, counts[k])
		}
	case "giants":
		head, err := parseList(args)
		if err != nil {
			return err
		}
		if err := toolbox.RemoveGiants(head); err != nil {
			return err
		}
		fmt.Fprintln(w, head.Values())
	case "insert":
		if len(args) < 2 {
			return fmt.Errorf("%w: insert needs an index and a value", errUsage)
		}
		i, err := parseInt(args[0])
		if err != nil {
			return err
		}
		x, err := parseInt(args[1])
		if err != nil {
			return err
		}
		head, err := parseList(args[2:])
		if err != nil {
			return err
		}
		node, err := toolbox.FindNthElement(head, i)
		if err != nil {
			return err
		}
		if node == nil {
			return fmt.Errorf("insert: index %d is past the end of the list", i)
		}
		if err := toolbox.InsertNode(node, &toolbox.SingleNode{Data: x}); err != nil {
			return err
		}
		fmt.Fprintln(w, head.Values())
	case "remove":
		return removeCmd(w, args)
	case "triple":
		q, err := parseQueue(args)
		if err != nil {
			return err
		}
		if err := toolbox.TripleValues(q); err != nil {
			return err
		}
		fmt.Fprintln(w, q.Values())
	case "rotate":
		fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		k := fs.Int("k", 1, "number of places to rotate left")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		q, err := parseQueue(fs.Args())
		if err != nil {
			return err
		}
		if err := toolbox.RotateQueueLeft(q, *k); err != nil {
			return err
		}
		fmt.Fprintln(w, q.Values())
	case "parens":
		if len(args) == 0 {
			ok, err := toolbox.HasBalancedParenthesesReader(stdin)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, ok)
			return nil
		}
		input := strings.Join(args, " ")
		if toolbox.HasBalancedParentheses(input) {
			fmt.Fprintln(w, true)
		} else {
			fmt.Fprintf(w, "false (offset %d)\n", toolbox.UnmatchedParenthesis(input))
		}
	case "score":
		if len(args) != 2 {
			return fmt.Errorf("%w: score needs a name and a value", errUsage)
		}
		score, err := parseInt(args[1])
		if err != nil {
			return err
		}
		db, err := DBOpen(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		return DBInsert(db, args[0], score)
	case "top":
		db, err := DBOpen(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		scores, err := DBScores(db)
		if err != nil {
			return err
		}
		name, err := toolbox.TopScorer(scores)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d\n", name, scores[name])
	default:
		return fmt.Errorf("%w: unknown command '%s'", errUsage, cmd)
	}
	return nil
}

// removeCmd unlinks one node from a doubly linked list and prints what is left,
// starting from the head found again through a surviving neighbour.
func removeCmd(w io.Writer, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: remove needs an index", errUsage)
	}
	i, err := parseInt(args[0])
	if err != nil {
		return err
	}
	values, err := parseInts(args[1:])
	if err != nil {
		return err
	}
	if i < 0 || i >= len(values) {
		return fmt.Errorf("remove: index %d out of range", i)
	}

	victim := toolbox.DoubleFromSlice(values)
	for j := 0; j < i; j++ {
		victim = victim.Next
	}
	survivor := victim.Next
	if survivor == nil {
		survivor = victim.Prev
	}

	if err := toolbox.RemoveNode(victim); err != nil {
		return err
	}
	if survivor == nil {
		fmt.Fprintln(w, []int{})
		return nil
	}
	head, err := toolbox.FindHead(survivor)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, head.Values())
	return nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: could not convert '%s' to an integer", errUsage, s)
	}
	return n, nil
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		n, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		values = append(values, n)
	}
	return values, nil
}

func parseList(args []string) (*toolbox.SingleNode, error) {
	values, err := parseInts(args)
	if err != nil {
		return nil, err
	}
	return toolbox.FromSlice(values), nil
}

func parseQueue(args []string) (*toolbox.Queue, error) {
	values, err := parseInts(args)
	if err != nil {
		return nil, err
	}
	return toolbox.QueueOf(values...), nil
}
