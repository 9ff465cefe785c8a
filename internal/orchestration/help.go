package orchestration

// DefaultHelpText is the content of the help overlay.
const DefaultHelpText = `Help

  ↑, ←, Pg Up, k          Go to previous slide
  ↓, →, Pg Dn, Space, j   Go to next slide
  Home                    Go to first slide
  End                     Go to last slide
  Number + Return         Go to specific slide
  b / m / f               Toggle blackout / mirrored / full screen mode
  p                       Toggle presenter mode
  P                       Pause
  ?, h                    Toggle this help
  Esc                     Back to slideshow`
