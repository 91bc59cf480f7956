// Package lineio implements line-oriented reading and writing over
// plain byte streams. Lines are terminated by '\n', optionally preceded
// by '\r'; the terminator is stripped on read and a single '\n' is
// appended on write. A final line without a terminator is still a line.
//
// Basic usage:
//
//	// Reading lines one at a time
//	r := lineio.NewReader(strings.NewReader("first\nsecond\n"))
//	for {
//	    line, err := r.ReadLine()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(line)
//	}
//
//	// Or with an iterator
//	for line, err := range lineio.Seq(strings.NewReader("first\nsecond\n")) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(line)
//	}
package lineio
