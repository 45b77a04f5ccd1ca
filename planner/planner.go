// planner generates a query plan from an AST (abstract syntax tree) generated
// by the compiler. The query plan is a tree structure similar to relational
// algebra. Set expressions fold bottom up into plan nodes that are ready to
// be consumed by later optimization and execution stages.
package planner
