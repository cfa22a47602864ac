package preset

// Bundled contains the default presets.
var Bundled = map[string]string{
	"focus": `name: focus
description: No gaps, thin borders, square corners

keywords:
  - option: general:gaps_in
    value: "0"
  - option: general:gaps_out
    value: "0"
  - option: general:border_size
    value: "1"
  - option: decoration:rounding
    value: "0"
`,
	"cozy": `name: cozy
description: Roomy gaps and rounded corners

keywords:
  - option: general:gaps_in
    value: "5"
  - option: general:gaps_out
    value: "10"
  - option: general:border_size
    value: "2"
  - option: decoration:rounding
    value: "10"
`,
	"presentation": `name: presentation
description: Animations and blur off for screen sharing

keywords:
  - option: animations:enabled
    value: "false"
  - option: decoration:blur:enabled
    value: "false"
`,
}
