/*
Command epochprop propagates Gaia astrometry to another epoch.

  Usage: epochprop [options] <file>
    -t=0: years to propagate, negative for the past
    -v=false: display version and copyright

The file has one source per line, fields separated by white space:

  id ra dec parallax pmra pmdec [rv]

in the units of the Gaia archive: degrees, mas, mas/yr and km/s.  The file
may be gzip, zstd, or lz4 compressed and may be "-" for stdin.  Lines
starting with # and blank lines are ignored and lines that cannot be
parsed are counted and skipped.

Output is the same fields for the new epoch, in the same order and
units.  A missing radial velocity is treated as zero and prints as NaN.

Propagation is rigorous, following ESA SP-1200 Vol. 1 section 1.5.5, and
so accounts for perspective acceleration.  For -t=0 the output repeats
the input.
*/
package main
