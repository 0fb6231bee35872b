package process

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
)

// RunClient reads lines from in and lets the server on host and port stem
// them, printing each reply to out. An empty line or the end of the input
// ends the loop. The usage prompt is written once to the prompt writer when
// the input is a terminal
func RunClient(host string, port int, in io.Reader, out, prompt io.Writer) error {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(prompt, `Input some text and press RETURN to stem it, or just RETURN to finish.`)
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if line == `` {
			break
		}
		reply, err := roundTrip(addr, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, reply)
	}
	return sc.Err()
}

// roundTrip sends one line over a fresh connection and reads the reply until
// the server closes its end
func roundTrip(addr, line string) (string, error) {
	conn, err := net.Dial(`tcp`, addr)
	if err != nil {
		return ``, err
	}
	defer func() { _ = conn.Close() }()
	if _, err = fmt.Fprintln(conn, line); err != nil {
		return ``, err
	}
	reply, err := io.ReadAll(conn)
	if err != nil {
		return ``, err
	}
	return string(reply), nil
}
