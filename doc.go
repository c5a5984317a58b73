/* Command avm runs programs for a small typed stack machine.

Programs are line oriented; each line holds at most one instruction, and a
`;` starts a comment running to the end of the line:

	push int32(42)  ; push a value
	push int32(33)
	add             ; pops 33 then 42, pushes int32(75)
	push float(44.55)
	mul
	dump            ; prints the stack, top first
	exit

Values are typed as one of int8, int16, int32, float or double, in increasing
order of precision. Literals are written as `type(number)` where number is an
optionally negative decimal; integral types reject fractions.

Instructions:

	push T(N)    push a value
	pop          discard the top value
	dump         print every value, top first, one per line
	assert T(N)  fail unless the top value has type T and displays as N does
	add sub mul div mod
	             pop the right then the left operand, push the result
	print        print the top value, which must be an int8, as one raw byte
	exit         halt; any further instructions are ignored

Arithmetic between operands of different types is carried out in the more
precise type, which is also the type of the result. Results that do not fit
the left operand's type fail as an overflow or underflow, and dividing or
taking the modulus by zero fails. Arithmetic pops both operands before
computing, so they are gone even when it fails; any failure stops the program.

Any lexical or syntax error prevents the whole program from running; every
such error found is reported, with parsing resuming at the next line.

Usage:

	avm [-trace] [-config FILE] [-dump-tokens] FILE...
	avm [-trace] [-config FILE] [-i] [FILE...]

Given files, each is run on a fresh machine and the exit status is non-zero
if any reported an error. Without files, or with -i, source is read from
standard input and run a line at a time against one machine, until a line
reading `;;`, an exit instruction, or the end of input.
*/
package main
