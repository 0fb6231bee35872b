package process

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lingproj/metatype/ling"
	"github.com/lingproj/metatype/meta"
	"github.com/lingproj/metatype/morph"
	"github.com/lyraproj/issue/issue"
	"golang.org/x/sync/errgroup"
)

// StemFunc reduces an inflected word to its stem. The tag is the part of
// speech tag of the word or the empty string when the word is untagged. The
// catalog of the server is bound while the function runs so that stemmers can
// use meta.CurrentCatalog()
type StemFunc func(word, tag string) string

// sessionTimeout is the absolute deadline for a session. A client that
// neither sends a line nor reads the reply does not hold up shutdown longer
// than this
const sessionTimeout = 30 * time.Second

func init() {
	meta.DefineSetting(`process.port`, 0)
	meta.DefineSetting(`process.charset`, `utf-8`)
}

// Server stems one line of text per TCP connection. A session reads a single
// line, stems it word by word, writes the word/stem pairs back, and closes
// the connection so that the client reads until EOF
type Server struct {
	port    int
	charset string
	stem    StemFunc
	logger  meta.Logger
	catalog meta.Catalog
	lis     net.Listener
}

// NewServer creates a server configured by the process.port and
// process.charset settings. Port zero makes the operating system pick an
// ephemeral port, revealed by Addr once the server listens
func NewServer(stem StemFunc, logger meta.Logger) *Server {
	port, _ := meta.Get(`process.port`, nil).(int)
	if port < 0 || port > 65535 {
		panic(meta.Error(InvalidPort, issue.H{`port`: port}))
	}
	charset, _ := meta.Get(`process.charset`, nil).(string)
	if !(strings.EqualFold(charset, `utf-8`) || strings.EqualFold(charset, `utf8`)) {
		panic(meta.Error(UnsupportedCharset, issue.H{`charset`: charset}))
	}
	return &Server{port: port, charset: charset, stem: stem, logger: logger, catalog: morph.Catalog()}
}

// Listen binds the server socket. Serve calls Listen unless it already was
// called
func (s *Server) Listen() error {
	lis, err := net.Listen(`tcp`, fmt.Sprintf(`:%d`, s.port))
	if err != nil {
		return err
	}
	s.lis = lis
	s.logger.Logf(meta.INFO, `listening on %s, charset %s`, lis.Addr(), s.charset)
	return nil
}

// Addr returns the bound address or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

// Serve accepts connections until the context is cancelled, then closes the
// listener and waits for the sessions that are still running
func (s *Server) Serve(ctx context.Context) error {
	if s.lis == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		_ = s.lis.Close()
		return nil
	})
	for {
		conn, err := s.lis.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Logf(meta.ERR, `accept failed: %v`, err)
			continue
		}
		g.Go(func() error {
			// A failed session must not bring the listener down
			s.session(conn)
			return nil
		})
	}
	cancel()
	return g.Wait()
}

func (s *Server) session(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	id := uuid.New()
	s.logger.Logf(meta.DEBUG, `session %s opened by %s`, id, conn.RemoteAddr())
	_ = conn.SetDeadline(time.Now().Add(sessionTimeout))
	err := meta.DoWithCatalog(s.catalog, func() error {
		line, err := bufio.NewReader(conn).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line = strings.TrimRight(line, "\r\n"); line == `` {
			return nil
		}
		_, err = io.WriteString(conn, s.StemLine(line))
		return err
	})
	if err != nil {
		s.logger.Logf(meta.ERR, `session %s: %v`, id, err)
		return
	}
	s.logger.Logf(meta.DEBUG, `session %s done`, id)
}

// StemLine stems each whitespace separated word of the line and joins the
// results on the wire format, one 'word/stem ' per word with a trailing
// space and no newline
func (s *Server) StemLine(line string) string {
	b := bytes.NewBufferString(``)
	for _, tok := range strings.Fields(line) {
		wt := ling.ParseWordTag(tok)
		b.WriteString(wt.Word())
		b.WriteByte('/')
		b.WriteString(s.stem(wt.Word(), wt.Tag()))
		b.WriteByte(' ')
	}
	return b.String()
}
