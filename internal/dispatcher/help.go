package dispatcher

const noErrorMessage = "no previous error"

const shortHelpText = `Commands: a i A I c C d y x X m M t T j J k K s g v G V e E r w W wq ! | u q Q f h H # = z Z :name`

const fullHelpText = `ed-style command line editor

Addresses: . $ 'c /re/ ?re? +n -n, separated by , or ;
Commands (selection applies where noted):
  a/i/A/I   append/insert text (A/I concatenate with the boundary line)
  c/C       change selection to new text
  d/y       delete/copy selection to clipboard
  x/X       paste clipboard after/before selection
  m/M/t/T   move/copy selection after/before an address
  j/J       join selection (J reflows to a width)
  k/K       tag selection start/end
  s///      regex substitute
  g/v/G/V   run commands over matching/non-matching lines
  e/E/r     read a file or command into the buffer
  w/W/wq    write the buffer to a file or command
  !/|       run, or pipe the selection through, a shell command
  u         undo/redo
  q/Q       quit (q requires a saved buffer)
  f         show or set the default file
  h/H       show the last error / toggle error display
  #/=       comment / print the selection bounds
  z/Z       scroll forward/backward
  :name     run a macro
`

func cmdH(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	msg := noErrorMessage
	if c.Ed.LastErr != nil {
		msg = c.Ed.LastErr.Error()
	}
	return false, c.UI.PrintMessage(msg)
}

func cmdHUpper(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	c.Ed.PrintErrors = !c.Ed.PrintErrors
	return false, nil
}

func cmdHelp(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	return false, c.UI.PrintMessage(shortHelpText)
}

func cmdHelpFull(c *ctx) (bool, error) {
	if err := forbidSelection(c); err != nil {
		return false, err
	}
	return false, c.UI.PrintMessage(fullHelpText)
}
