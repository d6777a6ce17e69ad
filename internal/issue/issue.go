// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	RuntimeNotFoundId Id = iota + 1
	MarkerParseErrorId
	ConfigLoadFailedId
	UnknownToolId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	runtimeNotFoundIssue = &Issue{
		id: RuntimeNotFoundId,
		mdMsg: `
# No matching runtime found!

We probed every runtime home but no installation matched the requested
version or alias. The searched locations are listed above.

## Things you can try:
- Install the requested runtime version:
~~~
$ dnvm install <version>
~~~

- Point DNX_HOME (or KRE_HOME) at the directory that holds your runtimes:
~~~
$ export DNX_HOME=/opt/dnx
~~~

- Check the 'sdk.version' entry in your global.json for typos
- Inspect the exact probe order:
~~~
$ dnxpath candidates
~~~`,
	}

	markerParseErrorIssue = &Issue{
		id: MarkerParseErrorId,
		mdMsg: `
# Failed to parse global.json!

Your global.json contains invalid JSON, or its 'sdk.version' entry is
not a string.

## Things you can try:
- Check the error message above for the specific line/column
- Validate the file with any JSON linter
- A minimal valid file looks like:
~~~json
{
  "sdk": {
    "version": "1.0.0-rc1"
  }
}
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the dnxpath configuration file.

## Configuration file locations:
- Linux: ~/.config/dnxpath/config.cue
- macOS: ~/Library/Application Support/dnxpath/config.cue
- Windows: %APPDATA%\dnxpath\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ dnxpath config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
default_alias: "default"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	unknownToolIssue = &Issue{
		id: UnknownToolId,
		mdMsg: `
# Unknown tool!

The tool name you specified is not one we can locate.

## Valid tool names:
- **dnx** / **dnu**: the current-generation runtime host and package manager
- **klr** / **kpm** / **k**: their predecessors from the K-era naming

## Example:
~~~
$ dnxpath which dnx
~~~`,
	}

	issues = map[Id]*Issue{
		runtimeNotFoundIssue.Id():  runtimeNotFoundIssue,
		markerParseErrorIssue.Id(): markerParseErrorIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		unknownToolIssue.Id():      unknownToolIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// SortedIds returns all known issue ids in ascending order, mainly for
// deterministic listings in tests and docs.
func SortedIds() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
