// Package scorer assigns every proposition a 0.0-1.0 score reflecting how
// well-supported it is: a base term from its incoming supporting evidence,
// a penalty for contradictions and for vulnerable assumptions linked to it
// by depends_on/assumes edges in either direction, and a small bonus for
// betweenness centrality.
package scorer
