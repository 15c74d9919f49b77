package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"gql/lexer"
	"gql/web"
	"os"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Tokens  struct {
		Query string `help:"The document to lex." placeholder:"<query>" arg:"" optional:""`
		File  string `help:"Read the document from this file instead." short:"f" type:"existingfile"`
	} `cmd:"" help:"Prints the token stream of the given document."`
	Check struct {
		Query string `help:"The document to lex." placeholder:"<query>" arg:"" optional:""`
		File  string `help:"Read the document from this file instead." short:"f" type:"existingfile"`
	} `cmd:"" help:"Lexes the given document and only reports whether it is valid on the token level."`
	Serve struct {
		Port string `help:"The port to listen on." default:"8080"`
	} `cmd:"" help:"Starts a small HTTP server turning POSTed documents into token streams."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("gql"),
		kong.Description("A lexer for GraphQL documents."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "tokens <query>", "tokens":
		source, err := readSource(cli.Tokens.Query, cli.Tokens.File)
		sigolo.FatalCheck(err)
		printTokens(source)
	case "check <query>", "check":
		source, err := readSource(cli.Check.Query, cli.Check.File)
		sigolo.FatalCheck(err)
		checkDocument(source)
	case "serve":
		web.StartServer(cli.Serve.Port)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

// readSource builds the lexer input either from the file (when given) or from the query argument.
func readSource(query string, file string) (*lexer.Source, error) {
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to read document file %s", file)
		}
		return lexer.NewSource(string(content), file), nil
	}
	return lexer.NewSource(query, ""), nil
}

func printTokens(source *lexer.Source) {
	l := lexer.NewLexer(source)
	for {
		token, err := l.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Printf("%4d..%-4d %-28s %s\n", token.Start, token.End, token.Kind, token.Value)
		if token.Kind == lexer.TokenKindEOF {
			return
		}
	}
}

func checkDocument(source *lexer.Source) {
	l := lexer.NewLexer(source)
	tokenCount := 0
	for {
		token, err := l.Next()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		if token.Kind == lexer.TokenKindEOF {
			sigolo.Infof("Document is valid, found %d tokens", tokenCount)
			return
		}
		tokenCount++
	}
}
