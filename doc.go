/*
Command gaiadist estimates distances to stars from their parallaxes using
a Bayesian posterior with the Exponentially Decreasing Space Density prior.

Contents

  Program overview
  Command line usage
  Configuring file locations
  File formats
  Algorithm outline


Program overview

Input is a catalogue of sources, one per line, with a parallax and a
parallax uncertainty in milliarcseconds.  Output is, for each source, the
mode of the distance posterior and selected quantiles of it, in parsecs.

Inverting a parallax is a poor distance estimator once the fractional
parallax error exceeds about 20 percent, and is meaningless for negative
parallaxes, which Gaia reports routinely.  The posterior used here is
proper for any parallax, including negative ones.

Sample run:

Here is a small catalogue.

   # id           plx    eplx   ra           dec
   alpha       10.000   0.100   12:30:00.00  +15:00:00.0
   beta         1.000   0.300
   gamma        0.200   0.250   187.5        -30.25
   delta       -0.500   0.400

You put it in a file, say stars.txt, then type "gaiadist stars.txt" and get
output with these columns:

  ID  Plx  PlxErr  Mode  Q5  Q95  DM  Position

Mode is the distance of maximum posterior density, Q5 and Q95 are the 5th
and 95th percentiles of the posterior and DM is the distance modulus of the
mode.  Values that could not be computed print as asterisks.


Command line usage

Invoking the program without command line arguments (or with invalid
arguments) shows this usage prompt.

  Usage: gaiadist [options] <catalogue>   estimate distances for sources in file
         gaiadist [options] -             estimate distances for sources from stdin
         gaiadist -h                      display help and quick reference
         gaiadist -v                      display version and copyright

  Options:
         -c <config-file>
         -p <path>

The catalogue may be plain text or may be gzip, zstd, or lz4 compressed.
The format is detected from the file contents, not the file name.


Configuring file locations

The only file gaiadist reads besides the catalogue is the optional config
file.  By default it is gaiadist.config in the current directory.  The -p
option names a different directory for it and the -c option names the file
directly.  A missing default config file is not an error, but a file named
with -c must exist.


File formats

Catalogue lines have white space separated fields

   id parallax parallax_error [ra dec]

Parallaxes are in mas.  The position is optional.  RA and Dec may be given
in decimal degrees or as sexagesimal hours and degrees with colons as
separators, hh:mm:ss.s and ±dd:mm:ss.  Lines starting with # and blank lines are ignored.
Lines that cannot be parsed are skipped silently.

The config file contains keywords, one per line.  Lines starting with #
are comments.

   headings     (default) print a version line and column headings
   noheadings
   modulus      (default) print the distance modulus column
   nomodulus
   position     (default) print positions of sources that have them
   noposition
   repeatable   seed Monte Carlo draws identically for each source
   random       (default) seed Monte Carlo draws from the clock

   lscale=<pc>          length scale of the prior, default 1350
   errfloor=<mas>       minimum parallax uncertainty, default 0
   tol=<x>              tolerance of the posterior CDF, default 1e-6
   quantiles=<q>,<q>... quantiles to report, default .05,.95
   draws=<n>            Monte Carlo draws per source, default 0
   interp=<method>      linear, quadratic (default) or spline

With draws greater than zero, two more columns show the mean and standard
deviation of distances drawn from the posterior by inverting the CDF.


Algorithm outline

1.  The parallax uncertainty is clipped to errfloor.

2.  The posterior density of distance r given parallax w with uncertainty s
and length scale L is proportional to

   r^2 exp(-r/L) exp(-(w - 1/r)^2 / (2 s^2))

Its mode is the lowest positive root of the cubic

   r^3 - 2L r^2 + (w L / s^2) r - L / s^2 = 0

3.  The density is scaled so that its value at the mode is 1 and is
integrated by adaptive Simpson quadrature from 0 out to a distance where the
density falls below tol.  Integration is forced to sample at the mode, at
multiples of L and around the distances implied by the parallax and its
uncertainty, so narrow peaks are not missed.

4.  The cumulative integral is normalized to 1 and interpolated.  Quantiles
are found by bisection on the interpolated CDF.

-------------
Public domain.
*/
package main
