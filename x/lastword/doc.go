/*
Package lastword implements a game of having the last word.

Anyone can pay the current fee to submit a message and become the last
sender. Every payment splits into a marketing cut and a prize contribution
that is pooled in a vault, and every submission raises the fee for the next
one by 0.78 percent, up to a configured cap. Starting with the tenth message
a one hour countdown runs and every further submission pushes it back. Once
the countdown lapses without a new message the last sender won and can claim
the whole vault. The game authority can also settle the game early for the
current last sender, and can adjust the fee bounds and the marketing share
while the game runs.

Only a sha256 digest of every message is recorded on chain. Distributing the
message content is left to the application layer.
*/
package lastword
