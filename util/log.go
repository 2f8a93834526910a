package util
import (
	"io"
	"os"
	"fmt"
	"sync"
	"time"
	"golang.org/x/term"
)

/*
 * a custom logger: levels are a bit mask, lines are optionally colored and
 * timestamped, and go either to a file (appended) or to stderr.
 */
const (
	Error = 1
	Warning = 2
	Info = 4
	Debug = 8

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	BlueColor = "\033[34m"
	MagentaColor = "\033[35m"
	ResetColor = "\033[0m"
)

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
}

type Logger struct {
	li		*LoggerInfo
	out		io.Writer
	mtx		sync.Mutex
}

// ColorSupported reports whether stderr is a terminal.
func ColorSupported() bool {
	return term.IsTerminal( int(os.Stderr.Fd()) )
}

func NewLogger( li *LoggerInfo ) *Logger {
	return &Logger{
		li: li,
	}
}

// NewLoggerTo ignores li.Filename and writes everything to w.
func NewLoggerTo( li *LoggerInfo, w io.Writer ) *Logger {
	return &Logger{
		li: li,
		out: w,
	}
}

// Discard returns a logger with every level disabled.
func Discard() *Logger {
	return NewLoggerTo( &LoggerInfo{}, io.Discard )
}

func(l *Logger) Enabled( mode uint8 ) bool {
	return l.li.Mode & mode == mode
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format( time.RFC3339 ) + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.out != nil {
		fmt.Fprintln( l.out, s )
		return
	}
	if l.li.Filename == "" {
		fmt.Fprintln( os.Stderr, s )
		return
	}
	// just append line
	f, err := os.OpenFile( l.li.Filename, os.O_APPEND | os.O_CREATE | os.O_WRONLY, 0600 )
	if err == nil {
		defer f.Close()
		f.WriteString( s + "\n" )
	}
}

func(l *Logger) LogError(err error) {
	if l.Enabled( Error ) {
		toWrite := l.prepareString("[ERROR]", RedColor) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.Enabled( Warning ) {
		toWrite := l.prepareString("[WARNING]", YellowColor) + warning
		l.LogString( toWrite )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.Enabled( Info ) {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}

func(l *Logger) LogDebug( line string ) {
	if l.Enabled( Debug ) {
		toWrite := l.prepareString( "[DEBUG]", MagentaColor ) + line
		l.LogString( toWrite )
	}
}
