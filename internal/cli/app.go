// Package cli implements the cf command line: encoding, decoding and
// checking codes, and looking up municipalities. Commands print their result
// on stdout and diagnostics on stderr, so output stays pipeable.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"regexp"

	"codicefiscale/internal/platform/logger"
	"codicefiscale/pkg/belfiore"
	"codicefiscale/pkg/codicefiscale"
)

var belfioreShape = regexp.MustCompile(`^[A-Za-z][0-9]{3}$`)

// App holds the wired dependencies of a single CLI run.
type App struct {
	dir    belfiore.Directory
	codec  *codicefiscale.Codec
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

// New builds an App around a municipality directory. Output writers are
// injected so tests can capture them.
func New(dir belfiore.Directory, stdout, stderr io.Writer) *App {
	return &App{
		dir:    dir,
		codec:  codicefiscale.NewCodec(dir),
		stdout: stdout,
		stderr: stderr,
		log:    logger.New(stderr),
	}
}

// Run executes one command line and returns the process exit code: 0 on
// success, 1 when the input is rejected, 2 on usage errors.
func (a *App) Run(args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	switch args[0] {
	case "encode":
		return a.runEncode(args[1:])
	case "decode":
		return a.runDecode(args[1:])
	case "check":
		return a.runCheck(args[1:])
	case "lookup":
		return a.runLookup(args[1:])
	case "help", "-h", "-help", "--help":
		a.usage()
		return 0
	default:
		a.log.Printf("unknown command %q", args[0])
		a.usage()
		return 2
	}
}

func (a *App) usage() {
	fmt.Fprint(a.stderr, `usage: cf <command> [flags]

Commands:
  encode   derive the code for a person
  decode   reconstruct person data from a code
  check    tell whether a code is valid
  lookup   find a municipality or country by name or Belfiore code

Run "cf <command> -h" for the flags of a command.
`)
}

func (a *App) runEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var (
		name      = fs.String("name", "", "given name")
		surname   = fs.String("surname", "", "surname")
		birthdate = fs.String("birthdate", "", "date of birth, YYYY-MM-DD")
		sexRaw    = fs.String("sex", "", "sex, M or F")
		place     = fs.String("place", "", "birthplace name or Belfiore code")
		asJSON    = fs.Bool("json", false, "print the result as JSON")
	)
	if code, ok := parseArgs(fs, args); !ok {
		return code
	}
	if *birthdate == "" || *sexRaw == "" || *place == "" {
		a.log.Print("encode: -birthdate, -sex and -place are required")
		return 2
	}

	sex, err := codicefiscale.ParseSex(*sexRaw)
	if err != nil {
		a.log.Print(err)
		return 1
	}

	pl, err := a.resolvePlace(*place)
	if err != nil {
		a.log.Printf("resolving %q: %v", *place, err)
		return 1
	}

	cf, err := a.codec.Encode(codicefiscale.Person{
		Name:      *name,
		Surname:   *surname,
		Birthdate: *birthdate,
		Sex:       sex,
		Place:     pl,
	})
	if err != nil {
		a.log.Print(err)
		return 1
	}

	if *asJSON {
		return a.printJSON(codeResult{Code: cf.Code(), Person: toPersonJSON(cf.Person())})
	}
	fmt.Fprintln(a.stdout, cf.Code())
	return 0
}

func (a *App) runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if code, ok := parseArgs(fs, args); !ok {
		return code
	}
	code := fs.Arg(0)
	if code == "" {
		a.log.Print("usage: cf decode [-json] CODE")
		return 2
	}

	cf, err := a.codec.Parse(code)
	if err != nil {
		a.log.Print(err)
		return 1
	}

	if *asJSON {
		return a.printJSON(codeResult{Code: cf.Code(), Person: toPersonJSON(cf.Person())})
	}

	p := cf.Person()
	fmt.Fprintf(a.stdout, "code:      %s\n", cf.Code())
	fmt.Fprintf(a.stdout, "surname:   %s\n", p.Surname)
	fmt.Fprintf(a.stdout, "name:      %s\n", p.Name)
	fmt.Fprintf(a.stdout, "birthdate: %s\n", p.Birthdate)
	fmt.Fprintf(a.stdout, "sex:       %s\n", p.Sex)
	fmt.Fprintf(a.stdout, "place:     %s\n", p.Place)
	fmt.Fprintf(a.stdout, "belfiore:  %s\n", p.Place.Code())
	return 0
}

func (a *App) runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	asJSON := fs.Bool("json", false, "print results as JSON")
	if code, ok := parseArgs(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		a.log.Print("usage: cf check [-json] CODE...")
		return 2
	}

	exit := 0
	for _, code := range fs.Args() {
		_, err := a.codec.Parse(code)
		if err != nil {
			exit = 1
		}

		if *asJSON {
			out := checkResult{Code: code, Valid: err == nil}
			if err != nil {
				var cerr *codicefiscale.Error
				if errors.As(err, &cerr) {
					out.Error = string(cerr.Code)
					out.Message = cerr.Message
				} else {
					out.Message = err.Error()
				}
			}
			if rc := a.printJSON(out); rc != 0 {
				return rc
			}
			continue
		}

		if err != nil {
			fmt.Fprintf(a.stdout, "invalid: %v\n", err)
		} else {
			fmt.Fprintln(a.stdout, "valid")
		}
	}
	return exit
}

func (a *App) runLookup(args []string) int {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if code, ok := parseArgs(fs, args); !ok {
		return code
	}
	query := fs.Arg(0)
	if query == "" {
		a.log.Print("usage: cf lookup [-json] NAME|CODE")
		return 2
	}

	place, err := a.resolvePlace(query)
	if err != nil {
		a.log.Printf("resolving %q: %v", query, err)
		return 1
	}

	if *asJSON {
		return a.printJSON(toPlaceJSON(place))
	}
	fmt.Fprintf(a.stdout, "%s %s\n", place.Code(), place)
	return 0
}

// parseArgs parses fs, mapping -h to a clean exit instead of a usage error.
func parseArgs(fs *flag.FlagSet, args []string) (exit int, ok bool) {
	switch err := fs.Parse(args); {
	case err == nil:
		return 0, true
	case errors.Is(err, flag.ErrHelp):
		return 0, false
	default:
		return 2, false
	}
}

// resolvePlace treats anything shaped like a Belfiore code as a code and
// everything else as a place name.
func (a *App) resolvePlace(raw string) (belfiore.Place, error) {
	if belfioreShape.MatchString(raw) {
		return a.dir.LookupByCode(raw)
	}
	return a.dir.LookupByName(raw)
}

func (a *App) printJSON(v any) int {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		a.log.Printf("encoding JSON: %v", err)
		return 1
	}
	return 0
}

type codeResult struct {
	Code   string     `json:"code"`
	Person personJSON `json:"person"`
}

type checkResult struct {
	Code    string `json:"code"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type personJSON struct {
	Name      string    `json:"name,omitempty"`
	Surname   string    `json:"surname,omitempty"`
	Birthdate string    `json:"birthdate"`
	Sex       string    `json:"sex"`
	Place     placeJSON `json:"place"`
}

type placeJSON struct {
	Name     string `json:"name"`
	Province string `json:"province,omitempty"`
	Code     string `json:"code"`
}

func toPersonJSON(p codicefiscale.Person) personJSON {
	return personJSON{
		Name:      p.Name,
		Surname:   p.Surname,
		Birthdate: p.Birthdate,
		Sex:       p.Sex.String(),
		Place:     toPlaceJSON(p.Place),
	}
}

func toPlaceJSON(p belfiore.Place) placeJSON {
	return placeJSON{
		Name:     p.Name(),
		Province: p.Province(),
		Code:     p.Code(),
	}
}
